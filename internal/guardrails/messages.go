package guardrails

const EmergencyMessage = `🚨 **EMERGENCY - CALL 112 IMMEDIATELY** 🚨

The symptoms you're describing (chest pain/pressure with pain radiating to arm) are **warning signs of a possible heart attack**.

**DO NOT WAIT - CALL 112 NOW**

While waiting for emergency services:
- Stop what you're doing and sit or lie down
- Chew an aspirin if available (unless allergic)
- Loosen tight clothing
- Stay calm and don't drive yourself

**Heart Attack Warning Signs:**
- Chest pain, pressure, or discomfort
- Pain radiating to arms, jaw, neck, or back
- Shortness of breath
- Cold sweats, nausea, lightheadedness

⚠️ **This is a medical emergency. I'm an AI chatbot and cannot provide emergency care. Call 112 or your local emergency number immediately.**`

const CrisisMessage = `🆘 **CRISIS SUPPORT AVAILABLE** 🆘

If you're having thoughts of suicide, please reach out for help immediately:

**Immediate Help:**
- Nigeria Red Cross Society: **0803 123 0430, 0809 993 7357**
- 📱 Emergency Response Africa (ERA): **0 8000 2255 372**
- 🚨 Emergency Services: **112**

**You are not alone.** These feelings are temporary, and help is available 24/7.

**What to do right now:**
1. Call one of the numbers above - counselors are ready to listen
2. Stay with someone or go to a public place
3. Remove access to means of self-harm
4. Go to nearest emergency room if in immediate danger

I'm an AI and can't provide crisis counseling, but trained professionals are waiting to help you. Please reach out right now - your life matters.

**International Crisis Lines:** https://www.opencounseling.com/suicide-hotlines`
